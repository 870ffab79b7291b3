package repository

// dateExpr rend l'expression SQL qui tronque un timestamp à sa date
// calendaire au format YYYY-MM-DD, selon le driver actif
func dateExpr(driverName, col string) string {
	if driverName == "sqlite" {
		return "strftime('%Y-%m-%d', " + col + ")"
	}
	return "to_char(" + col + ", 'YYYY-MM-DD')"
}
