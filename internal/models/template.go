package models

// Template is a reusable prompt with {variable} placeholders.
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Prompt      string   `json:"prompt"`
	Variables   []string `json:"variables"`
	IsPremium   bool     `json:"isPremium"`
	Tags        []string `json:"tags"`
	UseCount    int      `json:"useCount"`
	Rating      float64  `json:"rating"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// TemplateUpdate carries partial updates for PUT. Nil fields are left alone.
type TemplateUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Prompt      *string   `json:"prompt,omitempty"`
	Variables   *[]string `json:"variables,omitempty"`
	IsPremium   *bool     `json:"isPremium,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
}

// TemplateList is the GET /templates payload.
type TemplateList struct {
	Templates    []Template `json:"templates"`
	Total        int        `json:"total"`
	Categories   []string   `json:"categories"`
	TotalPremium int        `json:"totalPremium"`
	TotalFree    int        `json:"totalFree"`
}
