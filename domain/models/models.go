package models

// SupplyPayload is the decoded JSON argument: block heights and the token supply at each.
type SupplyPayload struct {
	X []float64 `json:"x"` // Time (blocks)
	Y []float64 `json:"y"` // Supply (tokens)
}

type ArtifactFormat string

const (
	ArtifactPNG  ArtifactFormat = "png"
	ArtifactHTML ArtifactFormat = "html"
)

// ChartArtifact describes one file written by the renderer.
type ChartArtifact struct {
	Path   string
	Format ArtifactFormat
	Size   int64
}
