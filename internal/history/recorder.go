package history

import "github.com/sirupsen/logrus"

// UpdatedMessage is recorded after every successful append.
const UpdatedMessage = "Conversation history updated"

// Recorder receives diagnostic trace messages.
type Recorder interface {
	Record(message string)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(message string)

// Record calls f(message).
func (f RecorderFunc) Record(message string) {
	f(message)
}

// standardRecorder logs through the logrus standard logger.
func standardRecorder() Recorder {
	return RecorderFunc(func(message string) {
		logrus.WithField("component", "history").Info(message)
	})
}
