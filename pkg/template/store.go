package template

import (
	"bytes"
	_ "embed"
	"encoding/json"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/patrickmn/go-cache"
)

//go:embed webapp.json
var webAppTemplate []byte

//go:embed webapp.parameters.json
var webAppParameters []byte

//go:embed webappsql.parameters.json
var webAppSQLParameters []byte

const (
	keyWebAppTemplate      = "webapp"
	keyWebAppParameters    = "webapp.parameters"
	keyWebAppSQLParameters = "webappsql.parameters"
)

type StoreConfig struct {
	Logger micrologger.Logger
}

// Store hands out the embedded documents. Documents are parsed once and
// every call returns a private copy the caller may modify.
type Store struct {
	logger micrologger.Logger

	cache *cache.Cache
}

func NewStore(config StoreConfig) (*Store, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}

	s := &Store{
		logger: config.Logger,

		cache: cache.New(cache.NoExpiration, 0),
	}

	return s, nil
}

// WebAppTemplate returns the template deploying a single free tier web app.
func (s *Store) WebAppTemplate() (map[string]interface{}, error) {
	if v, ok := s.cache.Get(keyWebAppTemplate); ok {
		return deepCopyValue(v).(map[string]interface{}), nil
	}

	contents := make(map[string]interface{})

	d := json.NewDecoder(bytes.NewReader(webAppTemplate))
	d.UseNumber()
	if err := d.Decode(&contents); err != nil {
		return nil, microerror.Maskf(invalidDocumentError, "%s", err.Error())
	}

	s.cache.SetDefault(keyWebAppTemplate, contents)

	return deepCopyValue(contents).(map[string]interface{}), nil
}

// WebAppParameters returns the parameter file of WebAppTemplate.
func (s *Store) WebAppParameters() (*Parameters, error) {
	p, err := s.parameters(keyWebAppParameters, webAppParameters)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return p, nil
}

// WebAppSQLParameters returns the parameter file of the web app with SQL
// database quickstart template.
func (s *Store) WebAppSQLParameters() (*Parameters, error) {
	p, err := s.parameters(keyWebAppSQLParameters, webAppSQLParameters)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return p, nil
}

func (s *Store) parameters(key string, raw []byte) (*Parameters, error) {
	if v, ok := s.cache.Get(key); ok {
		return v.(*Parameters).DeepCopy(), nil
	}

	p, err := ParseParameters(raw)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	s.cache.SetDefault(key, p)

	return p.DeepCopy(), nil
}
