package ports

import "context"

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación solo
// conoce este contrato, no la implementación concreta.
type LLMService interface {
	// GenerateInsight recibe el resumen financiero del negocio ya formateado en
	// texto y devuelve un consejo breve en español para el dueño de la tienda.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateInsight(ctx context.Context, businessSummary string) (string, error)
}
