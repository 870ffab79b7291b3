package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// Info affiche un message d'information (bleu)
func Info(format string, v ...interface{}) {
	color.Blue("[%s] %s", timestamp(), fmt.Sprintf(format, v...))
}

// Success affiche un succès (vert)
func Success(format string, v ...interface{}) {
	color.Green("[%s] ✓ %s", timestamp(), fmt.Sprintf(format, v...))
}

// Warning affiche un avertissement (jaune)
func Warning(format string, v ...interface{}) {
	color.Yellow("[%s] ⚠ %s", timestamp(), fmt.Sprintf(format, v...))
}

// Error affiche une erreur (rouge)
func Error(format string, v ...interface{}) {
	color.Red("[%s] ✗ %s", timestamp(), fmt.Sprintf(format, v...))
}

// Request affiche une requête HTTP terminée avec son status et sa durée
func Request(method, path string, statusCode int, duration time.Duration) {
	line := fmt.Sprintf("[%s] %-6s %-40s [%d] (%s)", timestamp(), method, path, statusCode, duration.Round(time.Millisecond))
	switch {
	case statusCode >= 500:
		color.Red("%s", line)
	case statusCode >= 400:
		color.Yellow("%s", line)
	default:
		color.Green("%s", line)
	}
}
