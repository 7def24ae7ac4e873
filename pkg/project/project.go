package project

var (
	description = "The azure-arm-api manages resource groups and ARM template deployments on Azure."
	gitSHA      = "n/a"
	name        = "azure-arm-api"
	source      = "https://github.com/giantswarm/azure-arm-api"
	version     = "0.1.0-dev"
)

func Description() string {
	return description
}

func GitSHA() string {
	return gitSHA
}

func Name() string {
	return name
}

func Source() string {
	return source
}

func Version() string {
	return version
}
