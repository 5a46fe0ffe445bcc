package model

// Review status values accepted by the upstream API.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// ReviewCustomer is the customer reference populated on review reads.
type ReviewCustomer struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// ReviewReply is the merchant response attached to a review.
type ReviewReply struct {
	Text        string `json:"text"`
	RespondedAt string `json:"respondedAt"`
}

// Review mirrors the upstream review document.
type Review struct {
	ID           string         `json:"_id"`
	Product      OrderProduct   `json:"product"`
	Customer     ReviewCustomer `json:"customer"`
	CustomerName string         `json:"customerName"`
	Rating       int            `json:"rating"`
	Title        string         `json:"title,omitempty"`
	Comment      string         `json:"comment"`
	Images       []string       `json:"images,omitempty"`
	Status       string         `json:"status"`
	Response     *ReviewReply   `json:"response,omitempty"`
	CreatedAt    string         `json:"createdAt"`
}
