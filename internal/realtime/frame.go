package realtime

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Команды STOMP 1.2, которые использует клиент
const (
	cmdConnect     = "CONNECT"
	cmdConnected   = "CONNECTED"
	cmdSend        = "SEND"
	cmdSubscribe   = "SUBSCRIBE"
	cmdUnsubscribe = "UNSUBSCRIBE"
	cmdDisconnect  = "DISCONNECT"
	cmdMessage     = "MESSAGE"
	cmdReceipt     = "RECEIPT"
	cmdError       = "ERROR"
)

var errHeartbeat = errors.New("stomp: heart-beat")

// Frame - кадр STOMP. Заголовки хранятся в порядке добавления:
// при повторе ключа значение имеет первое вхождение.
type Frame struct {
	Command string
	Headers [][2]string
	Body    []byte
}

// NewFrame создает кадр из пар ключ, значение
func NewFrame(command string, kv ...string) *Frame {
	f := &Frame{Command: command}
	for i := 0; i+1 < len(kv); i += 2 {
		f.Headers = append(f.Headers, [2]string{kv[i], kv[i+1]})
	}
	return f
}

// Header возвращает первое значение заголовка
func (f *Frame) Header(key string) string {
	for _, h := range f.Headers {
		if h[0] == key {
			return h[1]
		}
	}
	return ""
}

// Add добавляет заголовок
func (f *Frame) Add(key, value string) {
	f.Headers = append(f.Headers, [2]string{key, value})
}

// Encode сериализует кадр; CONNECT и CONNECTED не экранируются
func (f *Frame) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteString(f.Command)
	buf.WriteByte('\n')

	escape := f.Command != cmdConnect && f.Command != cmdConnected
	for _, h := range f.Headers {
		if escape {
			buf.WriteString(escapeHeader(h[0]))
			buf.WriteByte(':')
			buf.WriteString(escapeHeader(h[1]))
		} else {
			buf.WriteString(h[0])
			buf.WriteByte(':')
			buf.WriteString(h[1])
		}
		buf.WriteByte('\n')
	}
	if len(f.Body) > 0 && f.Header("content-length") == "" {
		fmt.Fprintf(&buf, "content-length:%d\n", len(f.Body))
	}
	buf.WriteByte('\n')
	buf.Write(f.Body)
	buf.WriteByte(0)
	return buf.Bytes()
}

// ParseFrame разбирает один кадр. Пустое сообщение из переводов строк -
// heart-beat, для него возвращается errHeartbeat.
func ParseFrame(data []byte) (*Frame, error) {
	data = bytes.TrimLeft(data, "\r\n")
	if len(data) == 0 {
		return nil, errHeartbeat
	}

	headerEnd := bytes.Index(data, []byte("\n\n"))
	sepLen := 2
	if crlf := bytes.Index(data, []byte("\r\n\r\n")); crlf >= 0 && (headerEnd < 0 || crlf < headerEnd) {
		headerEnd, sepLen = crlf, 4
	}
	if headerEnd < 0 {
		return nil, fmt.Errorf("stomp: frame without header terminator")
	}

	lines := strings.Split(strings.ReplaceAll(string(data[:headerEnd]), "\r\n", "\n"), "\n")
	f := &Frame{Command: lines[0]}
	if f.Command == "" {
		return nil, fmt.Errorf("stomp: empty command")
	}

	unescape := f.Command != cmdConnect && f.Command != cmdConnected
	for _, line := range lines[1:] {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("stomp: malformed header %q", line)
		}
		if unescape {
			var err error
			if key, err = unescapeHeader(key); err != nil {
				return nil, err
			}
			if value, err = unescapeHeader(value); err != nil {
				return nil, err
			}
		}
		f.Add(key, value)
	}

	body := data[headerEnd+sepLen:]
	if nul := bytes.IndexByte(body, 0); nul >= 0 {
		body = body[:nul]
	} else {
		return nil, fmt.Errorf("stomp: frame without NUL terminator")
	}
	f.Body = body
	return f, nil
}

var headerEscaper = strings.NewReplacer(`\`, `\\`, "\r", `\r`, "\n", `\n`, ":", `\c`)

func escapeHeader(s string) string {
	return headerEscaper.Replace(s)
}

func unescapeHeader(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("stomp: dangling escape in %q", s)
		}
		switch s[i] {
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		case 'c':
			b.WriteByte(':')
		case '\\':
			b.WriteByte('\\')
		default:
			return "", fmt.Errorf("stomp: invalid escape \\%c", s[i])
		}
	}
	return b.String(), nil
}
