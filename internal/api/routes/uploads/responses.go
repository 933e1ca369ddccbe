package uploads

import "time"

type UploadResponse struct {
	Success       bool      `json:"success"`
	URL           string    `json:"url"`
	Filename      string    `json:"filename"`
	OriginalName  string    `json:"originalName"`
	OriginalSize  int64     `json:"originalSize"`
	OriginalType  string    `json:"originalType"`
	ConvertedType string    `json:"convertedType"`
	Category      string    `json:"category"`
	UploadedAt    time.Time `json:"uploadedAt"`
}

type FileInfo struct {
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	Category   string    `json:"category"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type ListFilesResponse struct {
	Files []FileInfo `json:"files"`
}

type DeleteFileResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	FileName  string    `json:"fileName"`
	Category  string    `json:"category"`
	DeletedAt time.Time `json:"deletedAt"`
}
