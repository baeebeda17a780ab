package config

import (
	"fmt"
	"regexp"
	"strconv"
)

// connRegex matches user[:password]@host:port/absolute/dir. The password is
// optional; the directory must be absolute.
var connRegex = regexp.MustCompile(`^(.+?)(?::(.+))?@(.+?):(\d{1,5})(/.*)$`)

// ApplyConnString parses a connection string such as
//
//	user:pass@example.com:22/srv/filebin/assets
//
// and fills the corresponding Config fields.
func (c *Config) ApplyConnString(s string) error {
	m := connRegex.FindStringSubmatch(s)
	if m == nil {
		return fmt.Errorf("invalid connection string %q: want user[:password]@host:port/dir", s)
	}

	port, err := strconv.Atoi(m[4])
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q in connection string", m[4])
	}

	c.User = m[1]
	c.Password = m[2]
	c.Host = m[3]
	c.Port = port
	c.RemoteDir = m[5]
	return nil
}
