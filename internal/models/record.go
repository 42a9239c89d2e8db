package models

// UnfoundBarcode : code scanné mais absent de l'inventaire principal,
// horodaté au moment du signalement
type UnfoundBarcode struct {
	Barcode   string `csv:"BARCODE" json:"barcode"`
	Timestamp string `csv:"Timestamp" json:"timestamp"`
}

// LabelPayload : contenu d'une étiquette imprimable pour un produit.
// Les images sont des data-URL PNG en base64 ; elles restent vides si la
// génération échoue (l'étiquette texte est quand même retournée).
type LabelPayload struct {
	Barcode      string `json:"barcode"`
	BarcodeImage string `json:"barcode_image,omitempty"`
	QRImage      string `json:"qr_image,omitempty"`
	Price        string `json:"price"`
	TaxNote      string `json:"tax_note"`
	Framecode    string `json:"framecode"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	FrameColour  string `json:"frame_colour"`
	Size         string `json:"size"`
}
