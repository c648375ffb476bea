// Package routepath stores canonical HTTP paths for the landing service.
package routepath

const (
	Root         = "/"
	Health       = "/up"
	ImagesPrefix = "/images/"
	ImagesRoute  = ImagesPrefix + "*"
)

// Services is the in-page anchor the hero "learn more" link targets.
const Services = "#services"
