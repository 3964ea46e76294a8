package version

const (
	AppName    = "Tocadiscos"
	AppVersion = "0.3.0"
)
