package e2e_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("topictree init", func() {
	var dir string

	BeforeEach(func() {
		dir = tempDir()
	})

	It("writes a valid default config and the topics directory", func() {
		out := topictreeOK(dir, "init")
		Expect(out).To(ContainSubstring("config topictree.yaml"))
		Expect(out).To(ContainSubstring("dir    topics"))

		cfg := readFile(dir, "topictree.yaml")
		Expect(cfg).To(ContainSubstring("beginner"))
		Expect(filepath.Join(dir, "topics")).To(BeADirectory())

		Expect(topictreeOK(dir, "validate")).To(Equal("valid"))
	})

	It("initializes a directory given as argument", func() {
		topictreeOK(dir, "init", "course-content")
		Expect(filepath.Join(dir, "course-content", "topictree.yaml")).To(BeARegularFile())
		Expect(filepath.Join(dir, "course-content", "topics")).To(BeADirectory())
	})

	It("never overwrites an existing config", func() {
		writeConfig(dir, "root: content\nlevels: [beginner]\n")

		out := topictreeOK(dir, "init")
		Expect(out).To(ContainSubstring("exists topictree.yaml"))
		Expect(readFile(dir, "topictree.yaml")).To(Equal("root: content\nlevels: [beginner]\n"))
		Expect(filepath.Join(dir, "content", "topics")).To(BeADirectory())
	})

	It("is idempotent", func() {
		topictreeOK(dir, "init")
		first := readFile(dir, "topictree.yaml")
		topictreeOK(dir, "init")
		Expect(readFile(dir, "topictree.yaml")).To(Equal(first))

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(2))
	})
})
