package template

type Template struct {
	ParametersURI string
	URI           string
}
