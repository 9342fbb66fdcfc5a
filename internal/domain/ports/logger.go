package ports

// Logger é a porta de logging estruturado usada por serviços e
// infraestrutura; args são pares chave/valor no estilo slog
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With retorna um logger com atributos fixos anexados
	With(args ...any) Logger
}
