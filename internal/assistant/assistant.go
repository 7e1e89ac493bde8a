package assistant

// Snapshot is the back-office state summary fed into the recommendations
// prompt.
type Snapshot struct {
	TotalOrders       int      `json:"totalOrders"`
	PendingOrders     int      `json:"pendingOrders"`
	PublishedPosts    int      `json:"publishedPosts"`
	DraftPosts        int      `json:"draftPosts"`
	ScheduledMessages int      `json:"scheduledMessages"`
	RecentProducts    []string `json:"recentProducts"`
}

type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Action      string `json:"action,omitempty"`
}

type BlogPostSuggestion struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	Category        string   `json:"category"`
}

type MarketingRequest struct {
	Type           string   `json:"type"`
	Purpose        string   `json:"purpose"`
	TargetAudience string   `json:"targetAudience"`
	Products       []string `json:"products,omitempty"`
	Promotion      string   `json:"promotion,omitempty"`
}

type MarketingMessageSuggestion struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	TargetAudience string `json:"targetAudience"`
	BestSendTime   string `json:"bestSendTime"`
}

type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Features    []string `json:"features,omitempty"`
}

type ProductOptimization struct {
	OptimizedDescription string   `json:"optimizedDescription"`
	SEOKeywords          []string `json:"seoKeywords"`
	MarketingPoints      []string `json:"marketingPoints"`
}

type SEOPage struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type SEORequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    string    `json:"keywords"`
	Pages       []SEOPage `json:"pages"`
}

type ImprovedMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

type SEOAnalysis struct {
	Score            int              `json:"score"`
	Issues           []string         `json:"issues"`
	Recommendations  []string         `json:"recommendations"`
	ImprovedMetadata ImprovedMetadata `json:"improvedMetadata"`
}

type CustomerProfile struct {
	Name            string   `json:"name"`
	PurchaseHistory []string `json:"purchaseHistory"`
	Preferences     []string `json:"preferences"`
	Language        string   `json:"language"`
}

type PersonalizedMessage struct {
	Subject string `json:"subject,omitempty"`
	Content string `json:"content"`
}

type ContentOptimization struct {
	OptimizedContent string   `json:"optimizedContent"`
	SEOKeywords      []string `json:"seoKeywords"`
	Improvements     []string `json:"improvements"`
}
