package auth

// Gate holds the admin credentials configured at startup. Check is a plain
// equality comparison; no sessions or tokens are issued.
type Gate struct {
	user string
	pass string
}

func NewGate(user, pass string) *Gate {
	return &Gate{user: user, pass: pass}
}

func (g *Gate) Check(id, password string) bool {
	return id == g.user && password == g.pass
}
