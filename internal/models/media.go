package models

// ImageRequest asks for one AI-generated marketing image.
type ImageRequest struct {
	Prompt      string `json:"prompt"`
	Type        string `json:"type,omitempty"`        // property, marketing, social, logo, infographic
	Style       string `json:"style,omitempty"`       // realistic, modern, luxury, minimalist, professional
	AspectRatio string `json:"aspectRatio,omitempty"` // 1:1, 16:9, 4:3, 9:16
	Quality     string `json:"quality,omitempty"`     // draft, standard, premium
}

// ImageMetadata describes the generation parameters actually used.
type ImageMetadata struct {
	Model         string  `json:"model"`
	Steps         int     `json:"steps"`
	GuidanceScale float64 `json:"guidance_scale"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
}

// ImageResponse is the generated (or placeholder) image.
type ImageResponse struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	Prompt      string        `json:"prompt"`
	Type        string        `json:"type"`
	Style       string        `json:"style"`
	AspectRatio string        `json:"aspectRatio"`
	GeneratedBy string        `json:"generatedBy"` // "replicate-sdxl" or "placeholder"
	Timestamp   string        `json:"timestamp"`
	Metadata    ImageMetadata `json:"metadata"`
}

// VideoRequest asks for one AI-generated marketing video.
type VideoRequest struct {
	Type         string `json:"type"` // property_tour, market_animation, showcase_video, social_content
	Prompt       string `json:"prompt"`
	InputImage   string `json:"inputImage,omitempty"`
	Duration     int    `json:"duration,omitempty"`
	Style        string `json:"style,omitempty"` // realistic, cinematic, drone_view, professional, social_media
	AspectRatio  string `json:"aspectRatio,omitempty"`
	Quality      string `json:"quality,omitempty"`
	HoustonArea  string `json:"houstonArea,omitempty"`
	PropertyType string `json:"propertyType,omitempty"` // residential, commercial, land, mixed_use
}

// VideoMetadata describes the generated clip.
type VideoMetadata struct {
	Duration     int    `json:"duration"`
	Format       string `json:"format"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FPS          int    `json:"fps"`
	HoustonArea  string `json:"houstonArea,omitempty"`
	PropertyType string `json:"propertyType,omitempty"`
}

// VideoResponse is the generated video.
type VideoResponse struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	Type        string        `json:"type"`
	Prompt      string        `json:"prompt"`
	Style       string        `json:"style"`
	AspectRatio string        `json:"aspectRatio"`
	GeneratedBy string        `json:"generatedBy"`
	Timestamp   string        `json:"timestamp"`
	Metadata    VideoMetadata `json:"metadata"`
}

// UploadedImage is a user upload converted to a base64 data URL.
type UploadedImage struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	UploadedBy   string `json:"uploadedBy"`
	Timestamp    string `json:"timestamp"`
	Format       string `json:"format"`
}
