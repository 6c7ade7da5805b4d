package constants

// Kategori kendaraan (category key) dan sub-kategori per kategori
const (
	CATEGORY_MOBIL           = "mobil"
	CATEGORY_MOTOR           = "motor"
	CATEGORY_ALAT_KONSTRUKSI = "alat_konstruksi"
	CATEGORY_BUS             = "bus"
	CATEGORY_LOGISTIK        = "logistik"
	CATEGORY_LAINNYA         = "lainnya"
)

var CategoryKeys = []string{
	CATEGORY_MOBIL,
	CATEGORY_MOTOR,
	CATEGORY_ALAT_KONSTRUKSI,
	CATEGORY_BUS,
	CATEGORY_LOGISTIK,
	CATEGORY_LAINNYA,
}

var SubCategoryOptions = map[string][]string{
	CATEGORY_MOBIL:           {"City Car", "SUV", "MPV", "Sedan"},
	CATEGORY_MOTOR:           {"Sport", "Skuter", "Touring", "Cruiser", "Matic"},
	CATEGORY_ALAT_KONSTRUKSI: {"Excavator", "Loader", "Compactor", "Mixer", "Generator"},
	CATEGORY_BUS:             {"Pariwisata", "Mewah", "Medium", "Mini", "VIP"},
	CATEGORY_LOGISTIK:        {"Pickup", "Truk", "Box", "Double Cabin", "Tangki"},
	CATEGORY_LAINNYA:         {"Medis", "Salon", "Hiburan", "Kuliner", "Edukasi"},
}

// Sub-kategori "All" artinya tanpa filter
const SUB_CATEGORY_ALL = "All"

// Metode pembayaran: baru COD yang aktif, yang lain tampil tapi disabled di aplikasi
const (
	PAYMENT_COD      = "cash_on_delivery"
	PAYMENT_TRANSFER = "bank_transfer"
	PAYMENT_EWALLET  = "e_wallet"
)

var ActivePaymentMethods = []string{PAYMENT_COD}
