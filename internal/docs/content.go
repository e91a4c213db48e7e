package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with exgen",
		Content: topicQuickstart,
	},
	{
		Name:    "metadata",
		Title:   "Exercise Metadata",
		Summary: "Source kinds, sections, variants, slugs, and titles",
		Content: topicMetadata,
	},
	{
		Name:    "filenames",
		Title:   "Filename Scheme",
		Summary: "How canonical exercise filenames are derived",
		Content: topicFilenames,
	},
	{
		Name:    "template",
		Title:   "Template Fields",
		Summary: "The six \\newcommand declarations exgen rewrites",
		Content: topicTemplate,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "Config file schema, fields, and defaults",
		Content: topicConfig,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a project:

    cd your-solutions-repo
    exgen init

   This creates .exgen/config.yaml, a default template at
   .exgen/templates/exercise.tex, and an exercises/ output directory.

2. Preview a generation without writing anything:

    exgen new --source section --chapter 1 --section 1.1 --number 6 \
        --slug functions-and-relations --dry-run

3. Generate for real by dropping --dry-run. The new file lands in the
   output directory under its canonical name, e.g.

    exercises/abramson-2021-sec-01-01-ex-06-functions-and-relations.tex

4. See what has been generated so far:

    exgen list
`

const topicMetadata = `Exercise Metadata
=================

Every generation takes a small set of metadata fields:

  --source    section | review. Section exercises come from a numbered
              section of a chapter; review exercises come from the
              chapter-end review.
  --chapter   Positive integer.
  --section   Required when --source is section, e.g. "1.1" (a "1-1"
              form is also accepted). Ignored for review exercises.
  --number    Positive integer, the exercise number within its source.
  --variant   Optional single letter distinguishing sub-parts that share
              a number (6a, 6b, ...). "a", "A", and "(a)" are all
              accepted and normalize to "a".
  --slug      Required short identifier. Normalized to lowercase
              kebab-case: runs of non-alphanumeric characters collapse
              to a single hyphen and outer hyphens are trimmed.
  --title     Optional display title. When omitted it is derived from
              the slug: "functions-and-relations" becomes
              "Functions And Relations".

Validation failures name the offending field. A section exercise without
a section, a section that does not split into two numeric parts, and a
multi-letter variant are all rejected before anything is written.
`

const topicFilenames = `Filename Scheme
===============

Filenames are derived deterministically from the metadata so that
distinct exercises never collide and re-runs are idempotent:

  section:  <prefix>-sec-<SS>-<SS>-ex-<NN><v>-<slug>.tex
  review:   <prefix>-ch-<CC>-review-ex-<NN><v>-<slug>.tex

where <prefix> is the series prefix from the config (default
abramson-2021), <CC>/<NN>/<SS> are two-digit zero-padded numbers, and
<v> is the bare lowercase variant letter or nothing.

Examples:

  abramson-2021-sec-01-01-ex-06-functions-and-relations.tex
  abramson-2021-ch-01-review-ex-01a-determine-function.tex

Zero-padding keeps a directory listing in exercise order. The chapter,
section, number, and variant make the name unique even when two
exercises share a slug.
`

const topicTemplate = `Template Fields
===============

A template is an ordinary .tex file that declares six metadata commands:

  \newcommand{\exSource}{section}
  \newcommand{\exChapter}{1}
  \newcommand{\exSection}{1.1}
  \newcommand{\exNumber}{1}
  \newcommand{\exVariant}{}
  \newcommand{\exTitle}{Exercise Title}

exgen rewrites the body of each declaration (first occurrence only) and
leaves every other byte of the template untouched. Values are inserted
literally — a title containing \$ or braces survives as written.

  exSource   "section" or "review"
  exChapter  unpadded chapter number
  exSection  the section id, or a single space for review exercises
  exNumber   unpadded exercise number
  exVariant  parenthesized display form, e.g. "(a)", or empty
  exTitle    explicit --title, or the title derived from the slug

A template missing any of the six declarations is rejected — generating
an incomplete document would be worse than failing early.
`

const topicConfig = `Configuration Reference
=======================

exgen finds its project root by walking up from the current directory
looking for .exgen/config.yaml.

  name:        Project name. Required.
  prefix:      Series prefix used in every filename. Lowercase
               kebab-case. Default: abramson-2021.
  template:    Template path relative to the project root.
               Default: .exgen/templates/exercise.tex
  output-dir:  Output directory relative to the project root.
               Default: exercises

Flags override config values for a single run (--template, --out), and
EXGEN_PREFIX / EXGEN_TEMPLATE / EXGEN_OUTPUT_DIR environment variables
(loaded from a .env file when present) sit between the two.

Generated exercises are recorded in .exgen/manifest.json with a
deterministic UID; regenerating an exercise updates its record in place.
`
