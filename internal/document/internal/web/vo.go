package web

type UploadResp struct {
	Key string `json:"key"`
}

type ViewResp struct {
	URL  string `json:"url"`
	Mode string `json:"mode"`
}
