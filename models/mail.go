package models

// EmailMessage is a single transactional email to be delivered.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HTML    bool   `json:"html,omitempty"`
}

// MarketingBatchPayload is the asynq task payload for a marketing send.
type MarketingBatchPayload struct {
	CampaignID string   `json:"campaignId"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Recipients []string `json:"recipients"`
}
