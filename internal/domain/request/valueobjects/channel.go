package valueobjects

import "fmt"

// Channel is the medium through which a support request originated.
type Channel string

const (
	ChannelTeamsChat Channel = "teams_chat"
	ChannelTeamsCall Channel = "teams_call"
	ChannelEmail     Channel = "email"
	ChannelOther     Channel = "other"
)

var validChannels = map[Channel]bool{
	ChannelTeamsChat: true,
	ChannelTeamsCall: true,
	ChannelEmail:     true,
	ChannelOther:     true,
}

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	return validChannels[c]
}

func NewChannel(s string) (Channel, error) {
	channel := Channel(s)
	if !channel.IsValid() {
		return "", fmt.Errorf("invalid channel: %s", s)
	}
	return channel, nil
}
