package configs

// Dataset points the loader at the exported campaign report. The file is
// read lazily on the first request and re-read only when its content
// changes, so the path may be swapped out underneath a running server.
type Dataset struct {
	// Path is the location of the Meta Ads Manager export. CSV and XLSX
	// files are supported; the format is chosen by file extension.
	Path string `env:"PATH" envDefault:"data/campaigns.csv"`
}
