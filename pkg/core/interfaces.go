package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// LevelLogger is implemented by loggers that can filter verbose output
type LevelLogger interface {
	Logger
	Debugf(format string, args ...interface{})
}
