// Package errlog adapts error-kit values to zap structured logging: class,
// correlation ID, extra info, suppressed entries, and construction stacks
// become fields, and the log level follows the error class. The core
// packages stay logging-free; this is the only place the kit touches a
// logger.
package errlog
