package endzone250

// extractFrame locates the first '<' and last '>' in buf and returns
// the bytes strictly between them. Bytes outside the frame are
// ignored, matching the wire format's tolerance for leading garbage
// (e.g. a stray line feed from the previous frame) and trailing noise.
func extractFrame(buf []byte) ([]byte, error) {
	start := -1
	for i, b := range buf {
		if b == '<' {
			start = i
			break
		}
	}
	end := -1
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] == '>' {
			end = i
			break
		}
	}
	if start == -1 || end == -1 || end <= start {
		return nil, errInvalidFrame()
	}
	content := buf[start+1 : end]
	if len(content) == 0 {
		return nil, errTooShort()
	}
	return content, nil
}
