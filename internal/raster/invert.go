package raster

// InvertColors inverts the RGB channels of every non-transparent pixel in
// place, leaving alpha untouched. Black ink becomes white and vice versa,
// which is what the light/dark mode switch needs.
func (s *Surface) InvertColors() {
	pix := s.im.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		pix[i] = 255 - pix[i]
		pix[i+1] = 255 - pix[i+1]
		pix[i+2] = 255 - pix[i+2]
	}
}
