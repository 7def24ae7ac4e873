package sql

type SQL struct {
	AdministratorLogin         string
	AdministratorLoginPassword string
}
