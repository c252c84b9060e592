package inspector

type key int

const (
	keyNone key = iota
	keyNext
	keyPrev
	keyQuit
)

const (
	ctrlC  = 0x03
	ctrlD  = 0x04
	escape = 0x1b
)

// decodeKeys maps a chunk of raw input to navigation keys.
func decodeKeys(buf []byte) []key {
	var keys []key
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		if c == escape {
			if i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				switch buf[i+2] {
				case 'C', 'B':
					keys = append(keys, keyNext)
				case 'D', 'A':
					keys = append(keys, keyPrev)
				}
				i += 2
				continue
			}
			keys = append(keys, keyQuit)
			continue
		}
		switch c {
		case 'l', 'j', 'n', ' ', '\t':
			keys = append(keys, keyNext)
		case 'h', 'k', 'p':
			keys = append(keys, keyPrev)
		case 'q', 'Q', ctrlC, ctrlD:
			keys = append(keys, keyQuit)
		}
	}
	return keys
}
