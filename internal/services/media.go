package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"time"

	"marketing-backend/internal/models"
)

// MediaService generates marketing images and videos through Replicate.
// Images degrade to a placeholder URL when no token is configured; video
// generation has no offline equivalent and surfaces the error instead.
type MediaService struct {
	replicate *ReplicateClient
}

func NewMediaService(replicate *ReplicateClient) *MediaService {
	return &MediaService{replicate: replicate}
}

// houstonRealEstatePrompts maps image type and style to a base style prompt
// appended to the caller's prompt. Pairs without an entry (including the
// logo type and professional style) use the generic Houston qualifier.
var houstonRealEstatePrompts = map[string]map[string]string{
	"property": {
		"realistic":  "Professional real estate photography of a luxury Houston home, architectural details, modern design, bright natural lighting, professional composition, high-end residential property",
		"modern":     "Contemporary Houston home exterior, sleek modern architecture, glass elements, clean lines, minimalist landscaping, urban setting",
		"luxury":     "Luxury Houston mansion, upscale architecture, grand entrance, premium materials, elegant design, exclusive neighborhood",
		"minimalist": "Clean modern Houston home, simple lines, neutral colors, professional photography, minimal landscaping",
	},
	"marketing": {
		"realistic":  "Houston real estate marketing collateral, professional layout, clean design, property photos, modern typography, Houston skyline elements",
		"modern":     "Contemporary real estate flyer design, Houston-themed, modern graphics, clean layout, professional presentation",
		"luxury":     "Premium real estate marketing materials, gold accents, elegant typography, luxury branding, high-end design",
		"minimalist": "Clean real estate marketing design, white space, simple typography, professional layout, Houston branding",
	},
	"social": {
		"realistic":  "Instagram-ready Houston real estate post, professional property photo, engaging layout, modern design elements",
		"modern":     "Modern social media graphic for Houston real estate, contemporary design, vibrant colors, engaging typography",
		"luxury":     "Luxury real estate social media post, premium design, elegant layout, high-end visual elements",
		"minimalist": "Clean social media design for real estate, simple layout, professional photography, minimal text",
	},
	"infographic": {
		"realistic":  "Houston real estate market infographic, data visualization, professional charts, Houston skyline, market statistics",
		"modern":     "Contemporary Houston market data visualization, modern graphics, clean charts, trend indicators",
		"luxury":     "Premium real estate market infographic, elegant design, sophisticated data presentation, luxury branding",
		"minimalist": "Clean market data infographic, simple charts, minimal design, professional layout",
	},
}

// enhanceImagePrompt composes the final model prompt: the caller's prompt,
// then the style prompt, then the fixed Houston and quality qualifiers.
func enhanceImagePrompt(prompt, imgType, style string) string {
	if base := houstonRealEstatePrompts[imgType][style]; base != "" {
		return prompt + ", " + base + ", Houston Texas, professional quality, 4K resolution"
	}
	return prompt + ", Houston Texas real estate, professional photography, high quality"
}

// aspectDimensions holds base width and height per aspect ratio before the
// quality multiplier is applied.
var aspectDimensions = map[string][2]int{
	"1:1":  {512, 512},
	"16:9": {768, 432},
	"4:3":  {640, 480},
	"9:16": {432, 768},
}

var qualitySettings = map[string]struct {
	multiplier float64
	steps      int
}{
	"draft":    {1, 20},
	"standard": {1.5, 30},
	"premium":  {2, 50},
}

// GenerateImage runs SDXL with Houston-tuned prompts, or returns a
// placeholder image URL when Replicate is not configured.
func (s *MediaService) GenerateImage(ctx context.Context, req models.ImageRequest) (*models.ImageResponse, error) {
	imgType := orDefault(req.Type, "property")
	style := orDefault(req.Style, "professional")
	aspect := orDefault(req.AspectRatio, "16:9")
	quality := orDefault(req.Quality, "standard")

	dims, ok := aspectDimensions[aspect]
	if !ok {
		aspect = "16:9"
		dims = aspectDimensions[aspect]
	}
	qs, ok := qualitySettings[quality]
	if !ok {
		quality = "standard"
		qs = qualitySettings[quality]
	}
	width := int(float64(dims[0]) * qs.multiplier)
	height := int(float64(dims[1]) * qs.multiplier)

	prompt := enhanceImagePrompt(req.Prompt, imgType, style)

	resp := &models.ImageResponse{
		ID:          fmt.Sprintf("img_%d", time.Now().UnixMilli()),
		Prompt:      prompt,
		Type:        imgType,
		Style:       style,
		AspectRatio: aspect,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Metadata: models.ImageMetadata{
			Model:         "stability-ai/sdxl",
			Steps:         qs.steps,
			GuidanceScale: 7.5,
			Width:         width,
			Height:        height,
		},
	}

	if !s.replicate.Configured() {
		resp.URL = placeholderImageURL(width, height, req.Prompt)
		resp.GeneratedBy = "placeholder"
		return resp, nil
	}

	output, err := s.replicate.Run(ctx, replicateImageModel, map[string]interface{}{
		"prompt":              prompt,
		"width":               width,
		"height":              height,
		"num_outputs":         1,
		"scheduler":           "K_EULER",
		"num_inference_steps": qs.steps,
		"guidance_scale":      7.5,
		"prompt_strength":     0.8,
		"refine":              "expert_ensemble_refiner",
		"high_noise_frac":     0.8,
		"apply_watermark":     false,
	})
	if err != nil {
		log.Printf("[WARN] Image generation failed, serving placeholder: %v", err)
		resp.URL = placeholderImageURL(width, height, req.Prompt)
		resp.GeneratedBy = "placeholder"
		return resp, nil
	}

	imageURL := FirstURL(output)
	if imageURL == "" {
		log.Printf("[WARN] Image model returned no URL, serving placeholder")
		resp.URL = placeholderImageURL(width, height, req.Prompt)
		resp.GeneratedBy = "placeholder"
		return resp, nil
	}

	resp.URL = imageURL
	resp.GeneratedBy = "replicate-sdxl"
	return resp, nil
}

func placeholderImageURL(width, height int, prompt string) string {
	text := prompt
	if runes := []rune(text); len(runes) > 40 {
		text = string(runes[:40])
	}
	if text == "" {
		text = "Houston Real Estate"
	}
	return fmt.Sprintf("https://placehold.co/%dx%d/1e3a8a/ffffff?text=%s",
		width, height, url.QueryEscape(text))
}

// houstonTourPrompts holds per-property-type style prompts for property
// tours; houstonVideoPrompts covers the remaining video types.
var houstonTourPrompts = map[string]map[string]string{
	"residential": {
		"realistic":    "smooth cinematic tour of a beautiful Houston home, warm lighting, modern interior design, flowing camera movement through living spaces",
		"cinematic":    "dramatic cinematic property tour with golden hour lighting, Houston skyline visible through windows, professional real estate cinematography",
		"drone_view":   "aerial drone footage of Houston residential property, smooth orbiting movement, neighborhood context, professional real estate videography",
		"professional": "professional real estate tour with steady camera movements, well-lit interiors, clean modern spaces, Houston home showcase",
		"social_media": "engaging property tour perfect for Instagram and TikTok, dynamic movements, bright natural lighting, Houston real estate content",
	},
	"commercial": {
		"realistic":    "professional commercial property walkthrough, Houston business district, modern office spaces, clean corporate environment",
		"cinematic":    "cinematic commercial real estate tour, Houston downtown skyline, dramatic lighting, professional architecture showcase",
		"drone_view":   "aerial view of Houston commercial development, sweeping drone movements, urban landscape, professional real estate footage",
		"professional": "corporate property presentation, Houston commercial spaces, professional lighting, clean business environment tour",
		"social_media": "dynamic commercial property showcase for social media, Houston business district, engaging visual tour",
	},
	"land": {
		"realistic":    "smooth camera movement across Houston development land, natural lighting, clear property boundaries, development potential showcase",
		"cinematic":    "cinematic land development showcase, Houston growth areas, dramatic sky, investment opportunity presentation",
		"drone_view":   "aerial survey of Houston development land, property boundaries visible, neighborhood context, investment showcase",
		"professional": "professional land development presentation, Houston growth corridors, clear property visualization, investment focus",
		"social_media": "engaging land development content for social platforms, Houston investment opportunities, dynamic visual presentation",
	},
}

var houstonVideoPrompts = map[string]map[string]string{
	"market_animation": {
		"realistic":    "animated Houston real estate market data visualization, clean charts and graphs, professional market analysis presentation",
		"cinematic":    "dramatic Houston market trend animation with city backdrop, dynamic data visualization, professional market intelligence",
		"professional": "corporate market analysis animation, Houston real estate statistics, clean data presentation, investment insights",
		"social_media": "engaging Houston market trends animation for social media, dynamic charts, eye-catching data visualization",
	},
	"showcase_video": {
		"realistic":    "Houston real estate showcase with multiple properties, smooth transitions, professional presentation, market highlights",
		"cinematic":    "cinematic Houston real estate portfolio showcase, dramatic lighting, premium property highlights, luxury presentation",
		"professional": "professional Houston real estate company showcase, clean branding, multiple property types, corporate presentation",
		"social_media": "dynamic Houston real estate showcase for social platforms, engaging transitions, multiple property highlights",
	},
	"social_content": {
		"social_media": "eye-catching Houston real estate content optimized for Instagram, TikTok, and Facebook, dynamic movements, engaging visuals",
	},
}

// enhanceVideoPrompt composes the final video prompt: the caller's prompt,
// the type/style prompt when one exists, a Houston location qualifier, then
// the fixed technical requirements.
func enhanceVideoPrompt(videoType, prompt, style, houstonArea, propertyType string) string {
	enhanced := prompt

	var styles map[string]string
	if videoType == "property_tour" {
		styles = houstonTourPrompts[propertyType]
	} else {
		styles = houstonVideoPrompts[videoType]
	}
	if base := styles[style]; base != "" {
		enhanced = prompt + ", " + base
	}

	if houstonArea != "" {
		enhanced += ", located in " + houstonArea + ", Houston, Texas"
	} else {
		enhanced += ", Houston, Texas real estate"
	}

	return enhanced + ", smooth camera movement, high quality, professional cinematography, 4K resolution"
}

var videoQualityScale = map[string]float64{
	"draft":    0.6,
	"standard": 0.8,
	"premium":  1,
}

var videoFPS = map[string]int{
	"draft":    12,
	"standard": 18,
	"premium":  24,
}

// GenerateVideo runs image-to-video when an input image is supplied and
// text-to-video otherwise. There is no placeholder path for video.
func (s *MediaService) GenerateVideo(ctx context.Context, req models.VideoRequest) (*models.VideoResponse, error) {
	style := orDefault(req.Style, "professional")
	aspect := orDefault(req.AspectRatio, "16:9")
	quality := orDefault(req.Quality, "standard")
	duration := req.Duration
	if duration <= 0 {
		duration = 5
	}
	propertyType := orDefault(req.PropertyType, "residential")

	prompt := enhanceVideoPrompt(req.Type, req.Prompt, style, req.HoustonArea, propertyType)

	scale, ok := videoQualityScale[quality]
	if !ok {
		quality = "standard"
		scale = videoQualityScale[quality]
	}
	width, height := videoDimensions(aspect, scale)
	fps := videoFPS[quality]

	var (
		output interface{}
		err    error
	)
	if req.InputImage != "" {
		output, err = s.replicate.Run(ctx, replicateImg2VidModel, map[string]interface{}{
			"input_image":        req.InputImage,
			"sizing_strategy":    "maintain_aspect_ratio",
			"frames_per_second":  fps,
			"motion_bucket_id":   127,
			"noise_aug_strength": 0.1,
			"seed":               rand.Intn(1000000),
			"decoding_t":         3,
			"video_length":       duration,
		})
	} else {
		// zeroscope accepts 18 or 24 fps input; draft output is still
		// reported at 12.
		inputFPS := 18
		if quality == "premium" {
			inputFPS = 24
		}
		steps := qualitySettings[quality].steps
		output, err = s.replicate.Run(ctx, replicateText2VidModel, map[string]interface{}{
			"prompt":              prompt,
			"negative_prompt":     "blurry, low quality, distorted, amateur, poor lighting, shaky camera",
			"width":               width,
			"height":              height,
			"num_frames":          duration * 8,
			"num_inference_steps": steps,
			"guidance_scale":      17.5,
			"fps":                 inputFPS,
			"batch_size":          1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("video generation failed: %w", err)
	}

	videoURL := FirstURL(output)
	if videoURL == "" {
		return nil, fmt.Errorf("video model returned no output URL")
	}

	return &models.VideoResponse{
		ID:          fmt.Sprintf("vid_%d", time.Now().UnixMilli()),
		URL:         videoURL,
		Type:        req.Type,
		Prompt:      prompt,
		Style:       style,
		AspectRatio: aspect,
		GeneratedBy: "stable-video-diffusion",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Metadata: models.VideoMetadata{
			Duration:     duration,
			Format:       "mp4",
			Width:        width,
			Height:       height,
			FPS:          fps,
			HoustonArea:  req.HoustonArea,
			PropertyType: propertyType,
		},
	}, nil
}

// videoDimensions scales a 1080-based frame to the requested aspect ratio.
func videoDimensions(aspect string, scale float64) (int, int) {
	base := 1080.0
	var w, h float64
	switch aspect {
	case "1:1":
		w, h = base, base
	case "9:16":
		w, h = base, base*16/9
	case "4:3":
		w, h = base*4/3, base
	default: // 16:9
		w, h = base*16/9, base
	}
	return int(w * scale), int(h * scale)
}
