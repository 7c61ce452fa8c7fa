package dto

type CommonResp struct {
	Success bool     `json:"success"`
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Detail  string   `json:"detail,omitempty"`
}
