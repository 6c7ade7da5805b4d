package constants

const (
	ERROR_INTERNAL_ERROR       = "Terjadi kesalahan pada server"
	ERROR_INPUT                = "Data yang dikirim tidak valid"
	ERROR_CREATE               = "Gagal menyimpan data"
	ERROR_UPDATE               = "Gagal memperbarui data"
	ERROR_DELETE               = "Gagal menghapus data"
	ERROR_PARSE_DATA_TO_LOCALS = "Gagal membaca data request"
	NOT_FOUND_RECORDS          = "Data tidak ditemukan"

	MISSING_LOGIN_INPUT   = "Email dan password wajib diisi"
	INVALID_EMAIL         = "Email tidak terdaftar"
	INVALID_PASSWORD      = "Password salah"
	CAN_NOT_HASH_PASSWORD = "Gagal memproses password"
	UNAUTHORIZED          = "Silakan login terlebih dahulu"
	NOT_OWNER             = "Anda tidak punya akses ke data ini"

	ORDER_NOT_FOUND          = "Pesanan tidak ditemukan"
	ORDER_LOAD_FAILED        = "Gagal memuat pesanan."
	ORDER_LOAD_PARTIAL       = "Sebagian data pesanan gagal dimuat."
	ORDER_INVALID_TRANSITION = "Status pesanan tidak bisa diubah"
	ORDER_TERMS_REQUIRED     = "Syarat dan ketentuan harus disetujui"
	ORDER_INVALID_DATES      = "Tanggal sewa tidak valid"

	PRODUCT_NOT_FOUND = "Produk tidak ditemukan"
)
