package sqlinline

// QListIssues filters by optional status ($1) and owner email ($2). When $3 is
// true the newest issues come first, otherwise insertion order is kept. A
// zero limit ($4) means no limit.
const QListIssues = `--sql 3e149f43-ec85-43dc-905e-881d76a8456c
select id::text, title, category, description, amount, location, image, status, email, date
from issues
where ($1::text = '' or status = $1::text)
  and ($2::text = '' or email = $2::text)
order by case when $3::boolean then date end desc nulls last, seq asc
limit nullif($4::int, 0);
`

const QSelectIssueByID = `--sql 1015ed68-707e-495b-8c50-a4da38393d9f
select id::text, title, category, description, amount, location, image, status, email, date
from issues
where id = $1::uuid;
`

const QInsertIssue = `--sql 46c7203d-2571-46c6-8a28-cdc4b3cb4d8d
insert into issues(id, title, category, description, amount, location, image, status, email, date)
values ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

// QReplaceIssue overwrites every whitelisted column; email is not touched.
const QReplaceIssue = `--sql b16f6844-3441-4161-abaf-5ec53a16d346
update issues
set title = $2, category = $3, description = $4, amount = $5, status = $6, location = $7, image = $8, date = $9
where id = $1::uuid;
`

const QDeleteIssue = `--sql 78d4175e-c049-4b2b-9dc3-d657ebbf3e78
delete from issues
where id = $1::uuid;
`
