// internal/sigio/text.go
package sigio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadText reads a plain-text signal dump: one sample per line in raw
// ADC units, blank lines and '#' comments ignored. Text dumps carry no
// rate information, so the caller must know the capture rate.
func LoadText(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var samples []float64
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad sample %q: %w", path, line, text, err)
		}
		samples = append(samples, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return samples, nil
}
