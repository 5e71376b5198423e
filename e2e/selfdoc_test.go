package e2e_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("topictree schema", func() {
	It("outputs valid JSON with expected top-level keys", func() {
		out := topictreeOK(tempDir(), "schema")

		var schema map[string]any
		Expect(json.Unmarshal([]byte(out), &schema)).To(Succeed())
		Expect(schema).To(HaveKey("description"))

		props, ok := schema["properties"].(map[string]any)
		Expect(ok).To(BeTrue(), "schema should have properties")
		Expect(props).To(HaveKey("root"))
		Expect(props).To(HaveKey("levels"))
	})
})

var _ = Describe("topictree validate", func() {
	var dir string

	BeforeEach(func() {
		dir = tempDir()
	})

	It("prints valid for a correct config", func() {
		writeConfig(dir, "root: .\nlevels: [starter, beginner, advanced, expert]\n")
		Expect(topictreeOK(dir, "validate")).To(Equal("valid"))
	})

	It("reports each invalid level", func() {
		writeConfig(dir, "levels: [beginner, beginner, \"a/b\"]\n")
		out, err := topictree(dir, "validate")
		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring(`levels[1]: duplicate level "beginner"`))
		Expect(out).To(ContainSubstring(`levels[2]: level "a/b" must not contain '/'`))
	})

	It("fails when the config file is missing", func() {
		out, err := topictree(dir, "validate")
		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("reading config"))
	})
})

var _ = Describe("topictree explain", func() {
	It("documents the layout spellings", func() {
		out := topictreeOK(tempDir(), "explain")
		Expect(out).To(ContainSubstring("exercices"))
		Expect(out).To(ContainSubstring("subtopics"))
	})
})

var _ = Describe("topictree version", func() {
	It("prints the version", func() {
		Expect(topictreeOK(tempDir(), "version")).To(HavePrefix("topictree "))
	})
})
