// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

// Built-in reading content. Shipping the documents in the binary keeps the
// education and article screens working offline.

// EducationMarkdown backs the Learn screen.
const EducationMarkdown = `# Understanding Stress

Stress is your body's response to demand. A little of it sharpens focus;
too much of it, for too long, wears you down.

## What it looks like

- Trouble falling asleep, or waking up tired
- Irritability over small things
- A racing mind that won't settle
- Tension in the shoulders, jaw, or stomach

## What helps

**Name it.** Saying "I'm stressed about the deadline" out loud or in a
journal shrinks it from a fog into a thing you can handle.

**Slow your breath.** Four seconds in, six seconds out, for two minutes.
Longer exhales signal your nervous system to stand down.

**Move.** A ten-minute walk changes your body chemistry more reliably than
ten minutes of worrying.

**Talk.** To a friend, to a journal, or right here in the chat. Putting
words to a feeling is half of processing it.

## When to seek more support

If low mood or anxiety sticks around for more than two weeks, or starts
interfering with work, sleep, or relationships, consider reaching out to a
professional. Self-care tools are a complement, not a substitute.
`

// ArticleMarkdown backs the Featured screen.
const ArticleMarkdown = `# The Quiet Power of Checking In

*Featured reading*

Most of us can report the weather in our city more accurately than the
weather in our own head. We notice moods only when they get loud: the
slammed door, the 3 a.m. ceiling stare, the week that blurs.

Daily check-ins change that. Not therapy, not journaling marathons - a
single question, answered honestly: *how am I, right now, on a scale of
rough to great?*

## Why such a small habit works

The first benefit is resolution. Checked daily, your mood stops being a
vague season and becomes a series of data points. Patterns surface:
Tuesdays dip, walks help, the late coffee doesn't.

The second is distance. Rating a feeling requires stepping outside it for
a moment. Psychologists call this *affect labeling*, and brain-imaging
studies show that naming an emotion measurably dampens the amygdala's
response to it. The act of measuring calms the thing being measured.

## Starting tonight

Pick a consistent moment - after brushing your teeth works for most
people. Ask the question. Record the answer. Skip the analysis; the
pattern will do the talking after a few weeks.

Your future self, looking back at a month of honest little data points,
will know things about you that you currently don't.
`
