package api

// UploadResponse представляет ответ на загрузку файла
type UploadResponse struct {
	URL  string `json:"url"`  // публичный URL загруженного файла
	Size int64  `json:"size"` // размер в байтах
}
