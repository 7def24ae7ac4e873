package token

type Token struct {
	RefreshWithin string
}
