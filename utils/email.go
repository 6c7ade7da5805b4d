package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// OrderStatusEmailData data untuk template email perubahan status pesanan
type OrderStatusEmailData struct {
	OrderCode      string
	ProductName    string
	StartDate      string
	EndDate        string
	PickupLocation string
	TotalPrice     string
	Status         string
	StatusLabel    string
}

var orderStatusTemplate = template.Must(template.New("order_status").Parse(`
<h2>Pesanan {{.OrderCode}} {{.StatusLabel}}</h2>
<p>Produk: {{.ProductName}}</p>
<p>Tanggal sewa: {{.StartDate}} s/d {{.EndDate}}</p>
{{if .PickupLocation}}<p>Lokasi pengambilan: {{.PickupLocation}}</p>{{end}}
<p>Total: {{.TotalPrice}}</p>
<p>Status terbaru: <b>{{.Status}}</b></p>
`))

// SendOrderStatusEmail kirim email notifikasi status pesanan (async, gagal hanya dilog)
func SendOrderStatusEmail(to string, data OrderStatusEmailData) {
	if to == "" {
		return
	}
	go func() {
		var body bytes.Buffer
		if err := orderStatusTemplate.Execute(&body, data); err != nil {
			log.Printf("gagal render template email pesanan: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")
		if host == "" || from == "" {
			log.Println("SMTP belum dikonfigurasi, email pesanan dilewati")
			return
		}

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Pesanan "+data.OrderCode+" "+data.StatusLabel)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("gagal kirim email pesanan %s: %v", data.OrderCode, err)
		}
	}()
}
