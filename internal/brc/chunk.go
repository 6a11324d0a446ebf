package brc

import "bytes"

const endLine = '\n'

// Chunk is the half-open byte range [Start, End) of the input owned by one worker.
type Chunk struct {
	Start int
	End   int
}

func (c Chunk) Len() int { return c.End - c.Start }

// Plan splits data into exactly workers newline-aligned chunks.
// Every boundary other than 0 and len(data) sits right after a '\n', so no
// record is split. Chunks may be empty when the input has fewer lines than
// workers.
func Plan(data []byte, workers int) []Chunk {
	if workers < 1 {
		workers = 1
	}
	n := len(data)
	chunks := make([]Chunk, workers)
	start := 0
	for i := 0; i < workers-1; i++ {
		end := idealSplit(n, workers, i+1)
		if end < start {
			end = start
		}
		if end < n {
			if le := bytes.IndexByte(data[end:], endLine); le == -1 {
				end = n
			} else {
				end += le + 1
			}
		}
		chunks[i] = Chunk{Start: start, End: end}
		start = end
	}
	chunks[workers-1] = Chunk{Start: start, End: n}
	return chunks
}

func idealSplit(n, workers, i int) int {
	return int(int64(i) * int64(n) / int64(workers))
}
