package events

// ClickEvent is the payload published to the click topic for every
// successful redirect. The producer never sets Id; the consumer assigns
// one before the event is persisted so the stored document always has a
// deterministic key.
type ClickEvent struct {
	Id          string `json:"id,omitempty"`
	ShortCode   string `json:"short_code"`
	OriginalUrl string `json:"original_url"`
	Timestamp   int64  `json:"timestamp"`
	UserAgent   string `json:"user_agent,omitempty"`
	IpAddress   string `json:"ip_address,omitempty"`
	Referer     string `json:"referer,omitempty"`
}
