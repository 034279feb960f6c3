package prompts

// *** PR description prompt ***

var prDescriptionInstructions = `
Please provide a detailed description of the above changes proposed by a pull request. Your description should include, but is not limited to, the following sections:

- **Overview of the Changes:** A concise summary of what was modified.
- **Key Changes:** A list of the main changes that were implemented.
- (Only include when applicable) **New Dependencies Added:** Identify any new dependencies that have been introduced.
`

// *** Commit message prompt ***

var commitMessageInstructions = `
Please write a commit message for the staged changes above. Your message should follow these rules:

- The first line is a short summary of the change, fifty characters or less when possible.
- Separate the summary from the body with a blank line.
- The body explains what changed and why, not how.
- When recent commit messages are shown above, follow their style and conventions.

Respond with the commit message only, without any surrounding commentary.
`

var commitMessageHistoryHeader = "Below are the most recent commit messages to use as a style reference:"
