package response_models

type MediaURL struct {
	UploaderName string `json:"uploader_name"`
	URL          string `json:"url"`
	QuickAccess  string `json:"quick_access,omitempty"`
}

type MediaItem struct {
	MediaIndex   int64  `json:"media_index"`
	URL          string `json:"url"`
	UploaderName string `json:"uploader_name"`
	MediaType    string `json:"media_type"`
	Description  string `json:"description,omitempty"`
	QuickAccess  string `json:"quick_access,omitempty"`
}

type MediaSearchResult struct {
	MediaIndex   int64   `json:"media_index"`
	URL          string  `json:"url"`
	UploaderName string  `json:"uploader_name"`
	Scene        string  `json:"scene,omitempty"`
	QuickAccess  string  `json:"quick_access,omitempty"`
	Similarity   float64 `json:"similarity"`
}
