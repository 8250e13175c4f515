package response

type AcknowledgementPreviewResponse struct {
	FileName string `json:"fileName"`
	DataURI  string `json:"dataUri"`
}
