package properties

import "os"

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

type Color struct {
	R, G, B uint8
}

// ColorMap assigns a render color to each land-cover class label. Label 0 is
// the unclassified value and is never sampled or reported.
var ColorMap = map[int]Color{
	0: {0, 0, 0},       // unclassified
	1: {27, 120, 55},   // forest
	2: {166, 219, 160}, // shrubland
	3: {255, 255, 191}, // grassland
	4: {215, 25, 28},   // urban
	5: {44, 123, 182},  // water
	6: {253, 174, 97},  // cropland
}

func ModelServiceUrl() string {
	if url := os.Getenv("MODEL_SERVICE_URL"); url != "" {
		return url
	}
	return "http://localhost:8093"
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}
func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}
func DiscordWarnNotificationUrl() string {
	return os.Getenv("DISCORD_WARN_NOTIFICATION_URL")
}
