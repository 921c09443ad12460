package swinv

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

func writeFloats(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	return nil
}

func writeInts(fp string, i []int32) error {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, i); err != nil {
		return fmt.Errorf("writeInts failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeInts failed: %v", err)
	}
	return nil
}

// WriteFloats persists a float64 slice as a little-endian float32 array.
func WriteFloats(fp string, f []float64) error { return writeFloats(fp, f) }

// ReadFloats recovers a float64 slice from a little-endian float32 array.
func ReadFloats(fp string) ([]float64, error) { return readFloats(fp) }

func readFloats(fp string) ([]float64, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("readFloats failed: %v", err)
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("readFloats failed: %s is not a float32 array", fp)
	}
	f32 := make([]float32, len(b)/4)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, f32); err != nil {
		return nil, fmt.Errorf("readFloats failed: %v", err)
	}
	f := make([]float64, len(f32))
	for i, v := range f32 {
		f[i] = float64(v)
	}
	return f, nil
}

func readInts(fp string) ([]int32, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("readInts failed: %v", err)
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("readInts failed: %s is not an int32 array", fp)
	}
	i32 := make([]int32, len(b)/4)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, i32); err != nil {
		return nil, fmt.Errorf("readInts failed: %v", err)
	}
	return i32, nil
}
