package handler

import (
	"net/http"
	"time"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/log"
)

// HealthcheckHandler responde com o horário atual e a origem dos dados configurada
func HealthcheckHandler(source string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
			"source": source,
		})
		log.ForContext(r.Context()).Debug("healthcheck respondido")
	})
}
