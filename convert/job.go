package convert

// Job is a conversion running on its own goroutine. There is no
// cancellation; a Job always runs to completion.
type Job struct {
	progress chan int
	done     chan struct{}

	summary Summary
	err     error
}

// Start converts inputFile in the background.
func (c *Converter) Start(inputFile, outputFile string) *Job {
	j := &Job{
		progress: make(chan int, 3),
		done:     make(chan struct{}),
	}
	go func() {
		defer close(j.done)
		defer close(j.progress)
		j.summary, j.err = c.run(inputFile, outputFile, func(p int) {
			j.progress <- p
		})
	}()
	return j
}

// Progress yields completion percentages and is closed when the job ends.
func (j *Job) Progress() <-chan int {
	return j.progress
}

// Wait blocks until the job finishes.
func (j *Job) Wait() (Summary, error) {
	<-j.done
	return j.summary, j.err
}
