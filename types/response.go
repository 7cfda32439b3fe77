package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type AskResponse struct {
	Context  string `json:"context"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	// OK is false when the completion service failed and Answer carries the
	// warning message instead of a real answer.
	OK bool `json:"ok"`
}

type SummarizeResponse struct {
	Policy  string `json:"policy"`
	Summary string `json:"summary"`
}

type FAQResponse struct {
	FAQs string `json:"faqs"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type UploadResponse struct {
	FileName string `json:"file_name"`
}

type PaginateResponse struct {
	Total    int64       `json:"total"`
	Elements interface{} `json:"elements"`
	Page     int64       `json:"page"`
	Limit    int64       `json:"limit"`
}
