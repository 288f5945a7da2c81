package provider

// Channel is an out-of-app delivery channel.
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

func (c Channel) String() string { return string(c) }

// Message is a text to deliver to one phone number.
type Message struct {
	To   string
	Body string
}

// SendResult is the outcome of a single delivery attempt. Providers report
// failures here instead of returning an error.
type SendResult struct {
	Success bool
	ID      string
	Err     error
}

// Failed builds an unsuccessful SendResult.
func Failed(err error) SendResult {
	return SendResult{Err: err}
}
