// Package topics builds the relative paths of the topics content tree.
//
// Every function returns a slash-separated path relative to the content
// root. Nothing here touches the filesystem or validates identifiers.
package topics

import "strings"

// BasePath is the directory that holds all topic content.
const BasePath = "topics"

// Split splits a subtopic reference on its first slash. ok is false when
// topic contains no slash. Any further slashes stay in child.
func Split(topic string) (parent, child string, ok bool) {
	return strings.Cut(topic, "/")
}

// IsSubtopic reports whether topic refers to a subtopic ("parent/child").
func IsSubtopic(topic string) bool {
	return strings.Contains(topic, "/")
}

// TopicPath returns the directory of a topic, e.g. "topics/docker" for
// "docker" and "topics/aws/subtopics/ec2" for "aws/ec2".
func TopicPath(topic string) string {
	if parent, child, ok := Split(topic); ok {
		return BasePath + "/" + parent + "/subtopics/" + child
	}
	return BasePath + "/" + topic
}

// ProgressPath returns the path to a topic's progress.yaml.
func ProgressPath(topic string) string {
	return TopicPath(topic) + "/progress.yaml"
}

// RewardsPath returns the path to a topic's rewards.yaml.
func RewardsPath(topic string) string {
	return TopicPath(topic) + "/rewards.yaml"
}

// CoursePath returns the path to a course markdown file.
func CoursePath(topic, level, courseID string) string {
	return TopicPath(topic) + "/courses/" + level + "/" + courseID + ".md"
}

// ExercisePath returns the path to an exercise directory.
// The "exercices" spelling is part of the on-disk layout.
func ExercisePath(topic, level, courseID, exerciseID string) string {
	return TopicPath(topic) + "/exercices/" + level + "/" + courseID + "/" + exerciseID
}
