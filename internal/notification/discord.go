package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/landwatch/landcover-validation-poc/internal/properties"
)

type DiscordMessage struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

type DiscordEmbed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

func SendDiscordErrorNotification(errorMessage string) error {
	message := DiscordMessage{
		Embeds: []DiscordEmbed{
			{
				Title:       "🚨 Validation run failed",
				Description: fmt.Sprintf("An error occurred: %s", errorMessage),
				Color:       16711680, // Red color
			},
		},
	}
	return postDiscordMessage(properties.DiscordErrorNotificationUrl(), message)
}

func SendDiscordWarnNotification(warnMessage string) error {
	message := DiscordMessage{
		Embeds: []DiscordEmbed{
			{
				Title:       "⚠️ Validation warning",
				Description: warnMessage,
				Color:       16761095, // Orange color
			},
		},
	}
	return postDiscordMessage(properties.DiscordWarnNotificationUrl(), message)
}

func SendDiscordSuccessNotification(successMessage string) error {
	message := DiscordMessage{
		Embeds: []DiscordEmbed{
			{
				Title:       "✅ Validation run finished",
				Description: successMessage,
				Color:       65280, // Green color
			},
		},
	}
	return postDiscordMessage(properties.DiscordSuccessNotificationUrl(), message)
}

func postDiscordMessage(url string, message DiscordMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to send Discord notification, status code: %d", resp.StatusCode)
	}

	return nil
}
