// Package utils provides utility functions and types for gamemarks
//
//nolint:revive // utils is a common pattern for internal utilities
package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/crewjam/rfc5424"
)

// AppName is the RFC 5424 APP-NAME of every message
const AppName = "gamemarks"

// Logger defines the interface for logging operations
type Logger interface {
	LogInfo(message string, meta map[string]string)
	LogWarn(message string, meta map[string]string)
	LogError(message string, meta map[string]string)
	LogDebug(message string, meta map[string]string)
}

// RFC5424Logger implements Logger with RFC 5424 compliant syslog format using crewjam/rfc5424
type RFC5424Logger struct {
	appName     string
	hostname    string
	processID   string
	facility    rfc5424.Priority
	minSeverity rfc5424.Priority // messages less severe than this are dropped
	out         io.Writer        // nil means the current os.Stdout
	mu          sync.Mutex
	logs        []string
}

// NewRFC5424Logger creates a new RFC 5424 compliant logger using the crewjam/rfc5424 library.
func NewRFC5424Logger(appName string) (*RFC5424Logger, error) {
	if appName == "" {
		return nil, fmt.Errorf("app name must not be empty")
	}
	return &RFC5424Logger{
		appName:     appName,
		hostname:    getHostname(),
		processID:   strconv.Itoa(os.Getpid()),
		facility:    rfc5424.User,
		minSeverity: rfc5424.Info,
		logs:        make([]string, 0),
	}, nil
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return hostname
}

// ParseLevel maps debug|info|warn|error to a syslog severity.
func ParseLevel(level string) (rfc5424.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return rfc5424.Debug, nil
	case "", "info":
		return rfc5424.Info, nil
	case "warn", "warning":
		return rfc5424.Warning, nil
	case "error":
		return rfc5424.Error, nil
	}
	return rfc5424.Info, fmt.Errorf("unknown log level %q", level)
}

// SetLevel sets the least severe level that is still written.
func (l *RFC5424Logger) SetLevel(severity rfc5424.Priority) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minSeverity = severity
}

// SetOutput redirects formatted messages. A nil writer restores stdout.
func (l *RFC5424Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

func (l *RFC5424Logger) createMessage(severity rfc5424.Priority, message string, meta map[string]string) *rfc5424.Message {
	msg := &rfc5424.Message{
		Priority:  l.facility | severity,
		Timestamp: time.Now().UTC(),
		Hostname:  l.hostname,
		AppName:   l.appName,
		ProcessID: l.processID,
		MessageID: fmt.Sprintf("ID%d", time.Now().UnixNano()%100000),
		Message:   []byte(message),
	}

	// sorted so identical calls render identically
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		msg.AddDatum("meta@1", k, meta[k])
	}

	return msg
}

func (l *RFC5424Logger) writeLog(severity rfc5424.Priority, message string, meta map[string]string) {
	l.mu.Lock()
	if severity > l.minSeverity {
		l.mu.Unlock()
		return
	}
	out := l.out
	l.mu.Unlock()
	if out == nil {
		out = os.Stdout
	}

	msg := l.createMessage(severity, message, meta)
	formattedLog := fmt.Sprintf("<%d>1 %s %s %s %s - - %s",
		int(l.facility|severity),
		msg.Timestamp.Format(time.RFC3339),
		msg.Hostname, msg.AppName, msg.ProcessID, message)
	if _, err := msg.WriteTo(out); err != nil {
		_, _ = fmt.Fprintln(out, formattedLog)
	} else {
		_, _ = fmt.Fprintln(out)
	}

	l.mu.Lock()
	l.logs = append(l.logs, formattedLog)
	l.mu.Unlock()
}

// LogInfo logs an informational message (severity Info)
func (l *RFC5424Logger) LogInfo(message string, meta map[string]string) {
	l.writeLog(rfc5424.Info, message, meta)
}

// LogWarn logs a warning message (severity Warning)
func (l *RFC5424Logger) LogWarn(message string, meta map[string]string) {
	l.writeLog(rfc5424.Warning, message, meta)
}

// LogError logs an error message (severity Error)
func (l *RFC5424Logger) LogError(message string, meta map[string]string) {
	l.writeLog(rfc5424.Error, message, meta)
}

// LogDebug logs a debug message (severity Debug)
func (l *RFC5424Logger) LogDebug(message string, meta map[string]string) {
	l.writeLog(rfc5424.Debug, message, meta)
}

// GetLogs returns a copy of all captured logs
func (l *RFC5424Logger) GetLogs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	logsCopy := make([]string, len(l.logs))
	copy(logsCopy, l.logs)
	return logsCopy
}

// ClearLogs clears the in-memory log buffer
func (l *RFC5424Logger) ClearLogs() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = make([]string, 0)
}

// DefaultLogger is the global logger instance
var DefaultLogger *RFC5424Logger

// InitDefaultLogger initializes the global logger instance
func InitDefaultLogger() error {
	logger, err := NewRFC5424Logger(AppName)
	if err != nil {
		return err
	}
	DefaultLogger = logger
	return nil
}

// Convenience functions using the global logger

// LogInfo logs an informational message using the default logger
func LogInfo(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogInfo(message, meta)
	}
}

// LogWarn logs a warning message using the default logger
func LogWarn(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogWarn(message, meta)
	}
}

// LogError logs an error message using the default logger
func LogError(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogError(message, meta)
	}
}

// LogDebug logs a debug message using the default logger
func LogDebug(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogDebug(message, meta)
	}
}

// GetLogs returns logs from the default logger
func GetLogs() []string {
	if DefaultLogger != nil {
		return DefaultLogger.GetLogs()
	}
	return []string{}
}

// ClearLogs clears logs from the default logger
func ClearLogs() {
	if DefaultLogger != nil {
		DefaultLogger.ClearLogs()
	}
}
