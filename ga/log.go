package ga

import "github.com/sirupsen/logrus"

// logIteration is the default OnIteration hook: it structured-logs
// generation number, population size, and best/worst fitness, the Go
// equivalent of the original trainer's callback_status_print.
func logIteration(s *Status) {
	if len(s.Population.Individuals) == 0 {
		return
	}
	best := s.Population.Individuals[0].Fitness
	worst := s.Population.Individuals[len(s.Population.Individuals)-1].Fitness

	logrus.WithFields(logrus.Fields{
		"generation": s.Generation,
		"population": len(s.Population.Individuals),
		"best":       best,
		"worst":      worst,
	}).Info("generation complete")
}
