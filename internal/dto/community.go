package dto

// StorySubmissionRequest represents a reader's story. Tags are comma separated.
// @Description Request body for sharing a remedy story
type StorySubmissionRequest struct {
	User     string `json:"user"`
	Location string `json:"location"`
	Remedy   string `json:"remedy"`
	Story    string `json:"story"`
	Tags     string `json:"tags"`
}

// ChatRequest is a message for the assistant
// @Description Request body for the Vedji assistant
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply
type ChatResponse struct {
	Reply string `json:"reply"`
}


// GuestPostRequest is an article written through a guest invite link
// @Description Request body for the guest contributor portal
type GuestPostRequest struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}
