package entity

// Seller datos del emisor. Es el único bloque que se persiste entre sesiones.
type Seller struct {
	Company string
	Logo    string // data URL base64 (opcional, no se persiste con el perfil)
	Address []string
	Email   string
	Phone   string
	Website string
}

// Client datos del receptor de la factura.
type Client struct {
	Company       string
	ContactPerson string
	Address       []string
	Email         string
	Phone         string
}
