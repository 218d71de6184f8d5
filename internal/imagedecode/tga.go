package imagedecode

import (
	"fmt"
	"image"
	"image/color"
)

// decodeTGA decodes uncompressed (type 2) and RLE-compressed (type 10)
// true-color TGA images at 24 or 32 bits per pixel -- the two forms every
// common OBJ texture pack ships. Color-mapped and grayscale TGA are
// rejected rather than guessed at.
func decodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("imagedecode: tga data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("imagedecode: color-mapped tga not supported")
	}
	if imageType != 2 && imageType != 10 {
		return nil, fmt.Errorf("imagedecode: unsupported tga type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("imagedecode: unsupported tga bit depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("imagedecode: tga data truncated")
	}
	pixelData := data[offset:]

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bytesPerPixel := bpp / 8
	topToBottom := descriptor&0x20 != 0

	if imageType == 2 {
		expected := width * height * bytesPerPixel
		if len(pixelData) < expected {
			return nil, fmt.Errorf("imagedecode: tga pixel data truncated")
		}
		for y := 0; y < height; y++ {
			destY := flipY(y, height, topToBottom)
			for x := 0; x < width; x++ {
				i := (y*width + x) * bytesPerPixel
				img.SetRGBA(x, destY, tgaPixel(pixelData[i:], bytesPerPixel))
			}
		}
		return img, nil
	}

	if err := decodeTGARLE(img, pixelData, width, height, bytesPerPixel, topToBottom); err != nil {
		return nil, err
	}
	return img, nil
}

func flipY(y, height int, topToBottom bool) int {
	if topToBottom {
		return y
	}
	return height - 1 - y
}

func tgaPixel(p []byte, bytesPerPixel int) color.RGBA {
	a := uint8(255)
	if bytesPerPixel == 4 {
		a = p[3]
	}
	return color.RGBA{R: p[2], G: p[1], B: p[0], A: a}
}

func decodeTGARLE(img *image.RGBA, pixelData []byte, width, height, bytesPerPixel int, topToBottom bool) error {
	pixelCount := width * height
	pixelIdx := 0
	dataIdx := 0

	for pixelIdx < pixelCount && dataIdx < len(pixelData) {
		packet := pixelData[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if dataIdx+bytesPerPixel > len(pixelData) {
				break
			}
			c := tgaPixel(pixelData[dataIdx:], bytesPerPixel)
			dataIdx += bytesPerPixel
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				x, y := pixelIdx%width, pixelIdx/width
				img.SetRGBA(x, flipY(y, height, topToBottom), c)
				pixelIdx++
			}
			continue
		}

		for i := 0; i < count && pixelIdx < pixelCount; i++ {
			if dataIdx+bytesPerPixel > len(pixelData) {
				break
			}
			c := tgaPixel(pixelData[dataIdx:], bytesPerPixel)
			dataIdx += bytesPerPixel
			x, y := pixelIdx%width, pixelIdx/width
			img.SetRGBA(x, flipY(y, height, topToBottom), c)
			pixelIdx++
		}
	}
	return nil
}
