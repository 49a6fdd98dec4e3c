// Package main provides a command-line utility to inspect archive files
// produced by the rkyv core. It memory-maps the file via archivereader
// and hex-dumps a requested byte range, which is the quickest way to
// check a RelPtr's offset and a header's raw bytes by eye.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Miaxos/rkyv/archivereader"
)

func main() {
	offset := flag.Int("offset", 0, "Offset in file to start dumping from")
	length := flag.Int("length", 128, "Number of bytes to dump")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: archivedump [flags] <archive.bin>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	file := args[0]
	m, err := archivereader.Open(file)
	if err != nil {
		log.Fatalf("Failed to open archive: %v", err)
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Printf("Failed to close archive: %v", err)
		}
	}()

	fileSize := m.Len()
	if *offset < 0 || *offset >= fileSize {
		log.Fatalf("Invalid offset: %d (file size: %d)", *offset, fileSize)
	}
	if *length < 1 {
		log.Fatalf("Invalid length: %d", *length)
	}

	remaining := fileSize - *offset
	readLength := *length
	if readLength > remaining {
		readLength = remaining
		fmt.Printf("Warning: requested length %d exceeds available bytes (%d). Dumping %d bytes.\n",
			*length, remaining, readLength)
	}

	if !archivereader.CheckPageAlignment(*offset) {
		fmt.Printf("Note: offset 0x%x is not page-aligned; fine for a RelPtr header, not ideal for a re-mmapped root.\n", *offset)
	}

	buf := make([]byte, readLength)
	for i := 0; i < readLength; i++ {
		buf[i] = *(*byte)(m.At(*offset + i))
	}

	fmt.Printf("Dumping %d bytes at offset 0x%x (%d) of %s (size: %d bytes):\n",
		readLength, *offset, *offset, file, fileSize)

	for i := 0; i < readLength; i += 16 {
		end := i + 16
		if end > readLength {
			end = readLength
		}
		chunk := buf[i:end]

		fmt.Printf("%08x: ", *offset+i)
		for j := 0; j < 16; j++ {
			if j < len(chunk) {
				fmt.Printf("%02x ", chunk[j])
			} else {
				fmt.Print("   ")
			}
			if j == 7 {
				fmt.Print(" ")
			}
		}
		fmt.Print(" |")

		for _, b := range chunk {
			if b >= 32 && b <= 126 {
				fmt.Printf("%c", b)
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println("|")
	}
}
