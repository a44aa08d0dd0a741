package auth

// Claims representa la identidad resuelta de un token de sesión.
type Claims struct {
	UserID   string
	Username string
}
