package boards

// ESP32S3 is the SoC used by the onju boards.
var ESP32S3 = Platform{
	Name:    "esp32s3",
	GPIOMin: 0,
	GPIOMax: 48,
	Touch: []TouchChannel{
		"T1", "T2", "T3", "T4", "T5", "T6", "T7",
		"T8", "T9", "T10", "T11", "T12", "T13", "T14",
	},
}
